package fixed

import (
	"fmt"
	"math/big"
)

// MustParseWad is like [ParseWad] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding wads.
func MustParseWad(s string) Wad {
	w, err := ParseWad(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseWad(%q) failed: %v", s, err))
	}
	return w
}

// MustNewWad is like [NewWad] but panics if the raw value does not fit in int256.
func MustNewWad(raw *big.Int) Wad {
	w, err := NewWad(raw)
	if err != nil {
		panic(fmt.Sprintf("MustNewWad(%v) failed: %v", raw, err))
	}
	return w
}

// MustAdd is like [Wad.Add] but panics if computing error.
func (w Wad) MustAdd(v Wad) Wad {
	z, err := w.Add(v)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", v, err))
	}
	return z
}

// MustSub is like [Wad.Sub] but panics if computing error.
func (w Wad) MustSub(v Wad) Wad {
	z, err := w.Sub(v)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", v, err))
	}
	return z
}

// MustMul is like [Wad.Mul] but panics if computing error.
func (w Wad) MustMul(v Wad) Wad {
	z, err := w.Mul(v)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", v, err))
	}
	return z
}

// MustQuo is like [Wad.Quo] but panics if computing error.
func (w Wad) MustQuo(v Wad) Wad {
	z, err := w.Quo(v)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", v, err))
	}
	return z
}

// MustParseRay is like [ParseRay] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding rays.
func MustParseRay(s string) Ray {
	r, err := ParseRay(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseRay(%q) failed: %v", s, err))
	}
	return r
}

// MustNewRay is like [NewRay] but panics if the raw value does not fit in int256.
func MustNewRay(raw *big.Int) Ray {
	r, err := NewRay(raw)
	if err != nil {
		panic(fmt.Sprintf("MustNewRay(%v) failed: %v", raw, err))
	}
	return r
}

// MustAdd is like [Ray.Add] but panics if computing error.
func (r Ray) MustAdd(s Ray) Ray {
	z, err := r.Add(s)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", s, err))
	}
	return z
}

// MustSub is like [Ray.Sub] but panics if computing error.
func (r Ray) MustSub(s Ray) Ray {
	z, err := r.Sub(s)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", s, err))
	}
	return z
}

// MustMul is like [Ray.Mul] but panics if computing error.
func (r Ray) MustMul(s Ray) Ray {
	z, err := r.Mul(s)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", s, err))
	}
	return z
}

// MustQuo is like [Ray.Quo] but panics if computing error.
func (r Ray) MustQuo(s Ray) Ray {
	z, err := r.Quo(s)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", s, err))
	}
	return z
}

// MustParseRad is like [ParseRad] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding rads.
func MustParseRad(s string) Rad {
	d, err := ParseRad(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseRad(%q) failed: %v", s, err))
	}
	return d
}

// MustNewRad is like [NewRad] but panics if the raw value does not fit in int256.
func MustNewRad(raw *big.Int) Rad {
	d, err := NewRad(raw)
	if err != nil {
		panic(fmt.Sprintf("MustNewRad(%v) failed: %v", raw, err))
	}
	return d
}

// MustAdd is like [Rad.Add] but panics if computing error.
func (d Rad) MustAdd(e Rad) Rad {
	z, err := d.Add(e)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", e, err))
	}
	return z
}

// MustSub is like [Rad.Sub] but panics if computing error.
func (d Rad) MustSub(e Rad) Rad {
	z, err := d.Sub(e)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", e, err))
	}
	return z
}

// MustMul is like [Rad.Mul] but panics if computing error.
func (d Rad) MustMul(e Rad) Rad {
	z, err := d.Mul(e)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", e, err))
	}
	return z
}

// MustQuo is like [Rad.Quo] but panics if computing error.
func (d Rad) MustQuo(e Rad) Rad {
	z, err := d.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", e, err))
	}
	return z
}
