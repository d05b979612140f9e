package source

import (
	"go.mongodb.org/mongo-driver/mongo/gridfs"
)

// NewGridFS returns a source over an already open GridFS download stream,
// named by the stored file name. The stream stays owned by the caller,
// who closes it once the consumer is done.
func NewGridFS(ds *gridfs.DownloadStream) *Reader {
	var name string
	if f := ds.GetFile(); f != nil {
		name = f.Name
	}

	return NewNamedReader(name, ds)
}
