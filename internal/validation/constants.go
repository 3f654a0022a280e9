package validation

const (
	// String lengths
	MaxReferenceLength = 100
	MaxNameLength      = 128
	MaxAddressLength   = 255
	MaxURLLength       = 2048
)
