// Package resource provides a keyed registry of resource files with lazy,
// memoised loading.
//
// Files are registered under an identifier first; the first Load for an
// identifier calls the Manager's Loader and caches the result, and later
// calls return the cached value without touching the disk again:
//
//	textures := resource.NewManager[string](resource.LoadTexture)
//	textures.AddFile("player", "sprites/player.png")
//
//	img, err := textures.Load("player") // decodes the file
//	img, err = textures.Load("player")  // cached
//
// Registrations can also come from a YAML manifest (see LoadManifest).
//
// Loaders for textures (png, jpeg, gif, bmp, tiff, webp), fonts
// (TrueType/OpenType) and sounds (wav, ogg, mp3) are provided. Long music
// tracks are streamed with OpenMusic rather than cached. A Manager is not
// safe for concurrent use.
package resource
