// Package markbook helps transcribe hand-written student score sheets
// into a structured record set, using fuzzy name matching to locate the
// right student row while typing.
//
// # Model
//
// A Book is an ordered sequence of student records. Typing a partial name
// re-sorts the book so the best fuzzy match sits at the top; committing a
// marks line writes into whichever record is on top. A record gets its
// persistent identifier the first time marks are written to it; the
// counter behind those identifiers is monotone and never reused, even
// across a clear.
//
// # Quick Start
//
//	ctx := context.Background()
//	store, _ := blobstore.NewLocalStore("./data")
//	session := markbook.NewSession(store,
//	    markbook.WithCompression(markbook.CompressionZstd),
//	)
//	if err := session.Load(ctx); err != nil && !errors.Is(err, blobstore.ErrNotFound) {
//	    log.Fatal(err)
//	}
//
//	session.InitStudents(ctx, "student A\nstudent B\n")
//	session.Query(ctx, "B")                 // "student B" moves to the top
//	session.Exec(ctx, "b=2 2 2")            // records marks for student B
//	res, _ := session.Exec(ctx, ":export")  // tab-separated table
//	fmt.Print(res.Output)
//
// # Persistence
//
// Books serialize losslessly through a pluggable codec (JSON by default)
// and are saved as self-describing snapshots to any blobstore.Store:
// local filesystem, MinIO, S3, Redis, or plain memory. The tab-separated
// export view is lossy and meant for pasting into a spreadsheet.
package markbook
