// Package imgarray implements elementary image-array operations on
// interleaved 8-bit BGR data.
//
// An image is loaded into a Mat, a row-major grid of rows × cols × channels
// bytes with the channel order Blue, Green, Red:
//
//	m, err := imgarray.Read("coding.jpg")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	px, _ := m.Pixel(100, 100) // [B G R], a view into m
//	px[imgarray.Red] = 255     // mutates m in place
//	fmt.Println(m.Shape(), m.Size(), m.DType())
//
// Channels can be split into independent single-channel copies and merged
// back:
//
//	planes, _ := imgarray.Split(m)
//	m, _ = imgarray.Merge(planes...)
//
// Arithmetic saturates instead of wrapping:
//
//	sum, _ := imgarray.Add(imgarray.Vector(250), imgarray.Vector(10))
//	fmt.Println(sum) // [[255]]
//
// Read recognises JPEG, PNG, GIF, BMP, TIFF, WebP and JPEG 2000 files.
//
// A Mat is owned by a single goroutine; concurrent mutation is not safe.
package imgarray
