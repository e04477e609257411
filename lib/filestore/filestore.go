// Package filestore uploads user supplied documents to hosted object storage.
package filestore

import "context"

// File is an upload request. Name is the client's file name and may be empty.
type File struct {
	Data []byte
	Name string
}

// Object describes a stored file
type Object struct {
	URL  string
	Name string
	Size int64
}

// Uploader stores a file and returns where it can be fetched from
type Uploader interface {
	Upload(ctx context.Context, file File) (*Object, error)
}
