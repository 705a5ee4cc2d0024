package seedselect_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/seedselect"
	"github.com/hupe1980/seedselect/digest"
)

// ExampleSelectN selects three of five candidates with SHA-256.
func ExampleSelectN() {
	candidates := [][]byte{[]byte("id1"), []byte("id2"), []byte("id3"), []byte("id4"), []byte("id5")}

	selected, err := seedselect.SelectN("test", []byte("test-seed"), 1, 3, candidates, digest.Sum256)
	if err != nil {
		log.Fatal(err)
	}

	for _, id := range selected {
		fmt.Println(string(id))
	}
	// Output:
	// id2
	// id1
	// id3
}

// ExampleSelector_Select shows the rich result of a configured Selector.
func ExampleSelector_Select() {
	fn, err := digest.Provider(digest.SHA256)
	if err != nil {
		log.Fatal(err)
	}

	sel := seedselect.New(fn, seedselect.WithParallelism(4))

	res, err := sel.Select(context.Background(), seedselect.Request{
		Name:       "committee",
		Seed:       []byte("epoch-42"),
		Seq:        7,
		N:          4,
		Candidates: [][]byte{[]byte("peer1"), []byte("peer2"), []byte("peer3"), []byte("peer4"), []byte("peer5"), []byte("peer6"), []byte("peer7"), []byte("peer8"), []byte("peer9"), []byte("peer10")},
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(res.Indices)
	fmt.Println(res.Membership().Contains(8))
	// Output:
	// [8 2 3 7]
	// true
}
