// Package minio provides a blobstore.Store backed by MinIO or any
// S3-compatible object storage.
//
// # Usage
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds: credentials.NewStaticV4(accessKey, secretKey, ""),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	store := minio.NewStore(client, "my-bucket", "markbook/")
//
// The bucket must already exist; the store does not create it.
package minio
