// Package tileset is the image-facing collaborator of the solver: it
// slices a sample bitmap into uniform tiles, dedupes them into dense
// symbol ids, and renders a solved grid back into pixels.
//
// What:
//
//   - FromImage cuts a bitmap into tileW×tileH sub-images, interning
//     duplicates by exact pixel equality, and returns the tile table plus
//     a fully collapsed sample wave.Grid ready for wave.Analyze.
//     Pixel-color mode is just tile size 1×1.
//   - Render maps each cell id of a fully collapsed grid back to its tile
//     and blits the result into a W·tileW × H·tileH RGBA image.
//
// Why:
//
//   - The solver core speaks dense ids and never touches file formats;
//     this package is the bridge both ways.
//
// Complexity:
//
//   - FromImage: O(P·T) worst case, P = pixel count, T = distinct tiles
//     (pixel-equality dedup is a linear first-seen scan).
//   - Render: O(P) over the output pixel count.
//
// Errors:
//
//   - ErrNilImage:          nil source image.
//   - ErrBadTileSize:       non-positive tile dimensions.
//   - ErrNonFactorWidth:    image width not divisible by the tile width.
//   - ErrNonFactorHeight:   image height not divisible by the tile height.
//   - ErrTileIndex:         tile id out of range.
//   - ErrUncollapsedGrid:   rendering a grid with an undecided cell.
package tileset
