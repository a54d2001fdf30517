// Package synth composes source catalogs and noise into synthetic
// sky images.
//
// The package ties the lower layers together:
//
//   - [RenderCatalog]: rasterize a catalog of Gaussian sources
//   - [Build]: render a full scene (sources + background + shot noise)
//   - [FourGaussians], [HundredGaussians]: the classic demo images
//
// # Example
//
//	ds, _ := synth.FourGaussians()
//	fmt.Println(ds.Image.Width, ds.Image.Height, len(ds.Catalog.Sources))
//
// # Reproducibility
//
// Build derives two independent random streams from the scene seed,
// one for the catalog draw and one for the noise, so a scene renders
// to the same pixels on every run.
package synth
