// Package publish stores rendered pages for static distribution.
//
// A Store takes a page key and its rendered HTML and persists it
// somewhere a web server can serve it from. Two implementations are
// provided: DirStore writes into a local output directory, S3Store
// uploads to an S3 bucket.
//
//	store := publish.NewDirStore("dist")
//	_, err := store.Put(ctx, "index.html", []byte(html))
package publish
