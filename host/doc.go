// Package host connects pixfilter buffers to the outside world.
//
// It converts between [pixfilter.Buffer] and the standard image types,
// decodes PNG, JPEG, GIF, WebP, BMP and TIFF input, encodes PNG, JPEG, GIF,
// BMP and TIFF output, builds data URLs for embedding, and reads and writes
// raw RGBA8 dumps, optionally zstd-compressed.
//
// Example:
//
//	buf, _, err := host.Load("photo.jpg")
//	if err != nil {
//		return err
//	}
//	out, err := pixfilter.Apply(buf, params)
//	if err != nil {
//		return err
//	}
//	return host.Save("photo-edited.jpg", out, 92)
//
// JPEG output has no alpha channel. Translucent pixels are composited over
// black, matching what browsers do when exporting a canvas as JPEG.
package host
