package render

// BlendMode defines compositing operations using a bitmask (Flags | Op)
type BlendMode uint8

// Blend operations (0-15)
const (
	opReplace uint8 = 0x00
	opAlpha   uint8 = 0x01
	opAdd     uint8 = 0x02
	opMax     uint8 = 0x03
	opScreen  uint8 = 0x05
)

// Blend flags
const (
	flagBg uint8 = 0x10 // apply operation to background
	flagFg uint8 = 0x20 // apply operation to foreground
)

// Pre-defined blend modes
const (
	BlendReplace = BlendMode(opReplace | flagBg | flagFg)
	BlendAlpha   = BlendMode(opAlpha | flagBg | flagFg)
	BlendAdd     = BlendMode(opAdd | flagBg | flagFg)
	BlendMax     = BlendMode(opMax | flagBg | flagFg)
	BlendScreen  = BlendMode(opScreen | flagBg | flagFg)

	BlendFgOnly   = BlendMode(opReplace | flagFg)
	BlendScreenFg = BlendMode(opScreen | flagFg)
	BlendAlphaBg  = BlendMode(opAlpha | flagBg)
)

// apply runs op on one channel pair
func apply(op uint8, dst, src RGB, alpha float64) RGB {
	switch op {
	case opAlpha:
		return Blend(dst, src, alpha)
	case opAdd:
		return Add(dst, Scale(src, alpha))
	case opMax:
		return Max(dst, src)
	case opScreen:
		return Screen(dst, Scale(src, alpha))
	default:
		return src
	}
}
