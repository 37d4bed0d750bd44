package image

// Export is a raw function value carried by an export entry or an
// import-address-table slot. Untyped at the image boundary.
type Export = any

// FixedFileInfo is the fixed numeric block of a version-information
// resource: two packed 32-bit halves per version, each holding two 16-bit
// fields.
type FixedFileInfo struct {
	FileVersionMS    uint32
	FileVersionLS    uint32
	ProductVersionMS uint32
	ProductVersionLS uint32
}

// ImportDescriptor records one imported library in an image: the library
// name plus parallel name and address tables. The tables are walked in
// lockstep; the address slot at a matched name's position is the patch
// target for import hooking.
type ImportDescriptor struct {
	Library string
	Names   []string
	Addrs   []Export
}

// Module is the metadata of one loaded image.
type Module interface {
	// Name returns the module's file name, e.g. "steam_api64.dll".
	Name() string

	// Export resolves an exported symbol by name.
	Export(symbol string) (Export, bool)

	// VersionInfo returns the image's fixed version-information block.
	// ok is false when the resource is absent or cannot be read.
	VersionInfo() (FixedFileInfo, bool)

	// Imports returns the static import descriptor array.
	Imports() []*ImportDescriptor

	// DelayImports returns the deferred-load descriptor array.
	DelayImports() []*ImportDescriptor
}
