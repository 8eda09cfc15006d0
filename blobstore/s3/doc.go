// Package s3 provides a blobstore.Store backed by Amazon S3.
//
// # Usage
//
//	cfg, err := config.LoadDefaultConfig(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client := awss3.NewFromConfig(cfg)
//	store := s3.NewStore(client, "my-bucket", "markbook/")
package s3
