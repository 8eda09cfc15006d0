package markbook_test

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/hupe1980/markbook"
	"github.com/hupe1980/markbook/blobstore"
)

func Example() {
	ctx := context.Background()

	session := markbook.NewSession(blobstore.NewMemoryStore())
	if err := session.Load(ctx); err != nil && !errors.Is(err, blobstore.ErrNotFound) {
		log.Fatal(err)
	}

	if err := session.InitStudents(ctx, "student A\nstudent B\n"); err != nil {
		log.Fatal(err)
	}

	// Typing "B" floats the best match to the top, then the marks line
	// writes into that record.
	session.Query(ctx, "B")
	if _, err := session.Exec(ctx, "b=2 2 2"); err != nil {
		log.Fatal(err)
	}

	res, err := session.Exec(ctx, ":export")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(res.Output)
	// Output:
	// Record Id	Student Id	Total Marks	Item Marks
	// 1	student B	6	2	2	2
	// 	student A	0
}

func ExampleBook_SortWith() {
	book := markbook.New()
	book.AddStudent("Alice Martin")
	book.AddStudent("Bob Carter")
	book.AddStudent("Alicia Marquez")

	book.SortWith("alice")

	top, _ := book.Top()
	fmt.Println(top.Student)
	// Output:
	// Alice Martin
}
