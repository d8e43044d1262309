package debugger

import (
	"math/rand/v2"

	"github.com/jetsetilly/test64/hardware/spec"
)

type context struct {
	requestedSpec string
	rand          *rand.Rand
}

func (ctx *context) Spec() spec.Spec {
	switch ctx.requestedSpec {
	case "NTSC":
		return spec.NTSC
	case "AUTO", "PAL":
		return spec.PAL
	}

	panic("currently unsupported specification")
}

func (ctx *context) Reset() {
	ctx.rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func (ctx *context) Rand8Bit() uint8 {
	return uint8(ctx.rand.IntN(255))
}

func (ctx *context) Rand16Bit() uint16 {
	return uint16(ctx.rand.IntN(65535))
}
