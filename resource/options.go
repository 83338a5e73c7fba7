package resource

// Option configures a Manager during creation.
//
// Example:
//
//	textures := resource.NewManager[string](resource.LoadTexture,
//	    resource.WithBaseDir("assets"))
type Option func(*options)

// options holds optional configuration for a Manager.
type options struct {
	baseDir string
}

// defaultOptions returns the default manager options.
func defaultOptions() options {
	return options{}
}

// WithBaseDir resolves relative file paths against dir at load time.
// Absolute paths are used as registered.
func WithBaseDir(dir string) Option {
	return func(o *options) {
		o.baseDir = dir
	}
}
