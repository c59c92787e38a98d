package ixfn_test

import (
	"fmt"

	"ixfn"
	"ixfn/omap"
)

// Category says which kind of phone number an entry holds.
type Category int

const (
	Home Category = iota
	Office
	Mobile
)

func (c Category) String() string {
	switch c {
	case Home:
		return "home"
	case Office:
		return "office"
	case Mobile:
		return "mobile"
	}
	return "unknown"
}

// Entry is the composite index of one phone-book leaf: who the number
// belongs to and which category it is filed under.
type Entry struct {
	Last  string
	First string
	Cat   Category
}

type (
	categories = omap.Map[Category, string]
	family     = omap.Map[string, categories]
	book       = omap.Map[string, family]
)

// Example composes three map layers (surname, given name, category) into
// a single traversal whose leaves are tagged with an Entry composite
// index, then rewrites every number to include its full provenance.
func Example() {
	numbers := book{
		"Jones": {
			"Alice": {Home: "555-0100", Mobile: "555-0101"},
			"Bob":   {Office: "555-0200"},
		},
	}

	// One wrapper per nesting level. The outermost layer's key is
	// reindexed into a curried Entry constructor so that ApplyWithIndex
	// can bind the remaining keys one layer at a time.
	bySurname := ixfn.Reindex(func(last string) func(string) func(Category) Entry {
		return func(first string) func(Category) Entry {
			return func(cat Category) Entry {
				return Entry{Last: last, First: first, Cat: cat}
			}
		}
	}, omap.Mapped[string, family, family]())

	byGiven := omap.Mapped[string, categories, categories]()
	byCategory := omap.Mapped[Category, string, string]()

	all := ixfn.ApplyWithIndex(ixfn.ApplyWithIndex(bySurname, byGiven), byCategory)

	// Fix the action once, from the outside: every leaf's Target call
	// carries the fully assembled Entry.
	annotate := all.Resolve(func(e Entry) func(string) string {
		return func(number string) string {
			return fmt.Sprintf("%s (%s %s, %s)", number, e.First, e.Last, e.Cat)
		}
	})

	for last, members := range annotate(numbers).All() {
		for first, cats := range members.All() {
			for _, number := range cats.All() {
				fmt.Println(last+"/"+first+":", number)
			}
		}
	}

	// Output:
	// Jones/Alice: 555-0100 (Alice Jones, home)
	// Jones/Alice: 555-0101 (Alice Jones, mobile)
	// Jones/Bob: 555-0200 (Bob Jones, office)
}
