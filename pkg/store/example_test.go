package store_test

import (
	"fmt"
	"os"

	"github.com/Jadiker/prototype-database/pkg/store"
)

// ExampleNew demonstrates a full load, mutate, save, reload cycle.
func ExampleNew() {
	dir, err := os.MkdirTemp("", "example-database")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	factory := func() map[string]any { return map[string]any{} }

	db, err := store.New(store.Config{Dir: dir}, factory)
	if err != nil {
		fmt.Println(err)
		return
	}

	// First run: no pointer file, so the factory value is returned.
	v, err := db.Load()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(len(v))

	v["wow"] = "haha"
	if err := db.Save(); err != nil {
		fmt.Println(err)
		return
	}

	// A fresh store over the same directory sees the save.
	db2, err := store.New(store.Config{Dir: dir}, factory)
	if err != nil {
		fmt.Println(err)
		return
	}
	v2, err := db2.Load()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(v2["wow"])

	// Output:
	// 0
	// haha
}

// ExampleStore_Update demonstrates the scoped session: the save runs on
// exit even if the session body fails.
func ExampleStore_Update() {
	dir, err := os.MkdirTemp("", "example-database")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	db, err := store.New(store.Config{Dir: dir}, func() map[string]any { return map[string]any{} })
	if err != nil {
		fmt.Println(err)
		return
	}

	err = db.Update(func(v *map[string]any) error {
		(*v)["hi"] = "yay"
		return nil
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	latest, err := db.Latest()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(latest != "")

	// Output:
	// true
}
