package fixed

import "fmt"

// Conversions between scales.
//
// Upscaling is exact but may overflow, downscaling is lossy and always
// truncates towards zero, which is why it is spelled out in method names.

// Ray converts w to a ray by multiplying the raw value by 10^9.
func (w Wad) Ray() (Ray, error) {
	z, err := w.raw.lsh(RayScale - WadScale)
	if err != nil {
		return Ray{}, fmt.Errorf("converting %v to %T: %w", w, Ray{}, err)
	}
	return Ray{raw: z}, nil
}

// Rad converts w to a rad by multiplying the raw value by 10^27.
func (w Wad) Rad() (Rad, error) {
	z, err := w.raw.lsh(RadScale - WadScale)
	if err != nil {
		return Rad{}, fmt.Errorf("converting %v to %T: %w", w, Rad{}, err)
	}
	return Rad{raw: z}, nil
}

// Rad converts r to a rad by multiplying the raw value by 10^18.
func (r Ray) Rad() (Rad, error) {
	z, err := r.raw.lsh(RadScale - RayScale)
	if err != nil {
		return Rad{}, fmt.Errorf("converting %v to %T: %w", r, Rad{}, err)
	}
	return Rad{raw: z}, nil
}

// TruncWad converts r to a wad, discarding the last 9 digits after the
// decimal point.
func (r Ray) TruncWad() Wad {
	return Wad{raw: r.raw.rshDown(RayScale - WadScale)}
}

// TruncWad converts d to a wad, discarding the last 27 digits after the
// decimal point.
func (d Rad) TruncWad() Wad {
	return Wad{raw: d.raw.rshDown(RadScale - WadScale)}
}

// TruncRay converts d to a ray, discarding the last 18 digits after the
// decimal point.
func (d Rad) TruncRay() Ray {
	return Ray{raw: d.raw.rshDown(RadScale - RayScale)}
}

// Multiplication across scales.
//
// Each method names the scale of its result.
// Products are truncated towards zero. Wad and ray products must keep the
// intermediate product of the raw values within 256 bits, as rmultiply does
// on-chain. Products involving a rad only check the result.

// MulRay returns w * r as a wad.
// The raw value of the result is w.raw * r.raw / 10^27.
func (w Wad) MulRay(r Ray) (Wad, error) {
	z, err := w.raw.mulDiv(r.raw, pow10[RayScale])
	if err != nil {
		return Wad{}, fmt.Errorf("computing [%v * %v]: %w", w, r, err)
	}
	return Wad{raw: z}, nil
}

// MulRayToRad returns w * r as a rad.
// The result is exact: the raw value is w.raw * r.raw.
func (w Wad) MulRayToRad(r Ray) (Rad, error) {
	z, err := w.raw.mul(r.raw)
	if err != nil {
		return Rad{}, fmt.Errorf("computing [%v * %v]: %w", w, r, err)
	}
	return Rad{raw: z}, nil
}

// MulRad returns w * d as a rad.
// The raw value of the result is w.raw * d.raw / 10^18.
func (w Wad) MulRad(d Rad) (Rad, error) {
	z, err := w.raw.mulDivWide(d.raw, pow10[WadScale])
	if err != nil {
		return Rad{}, fmt.Errorf("computing [%v * %v]: %w", w, d, err)
	}
	return Rad{raw: z}, nil
}

// MulWad returns r * w as a ray.
// The raw value of the result is r.raw * w.raw / 10^18.
func (r Ray) MulWad(w Wad) (Ray, error) {
	z, err := r.raw.mulDiv(w.raw, pow10[WadScale])
	if err != nil {
		return Ray{}, fmt.Errorf("computing [%v * %v]: %w", r, w, err)
	}
	return Ray{raw: z}, nil
}

// MulRad returns r * d as a rad.
// The raw value of the result is r.raw * d.raw / 10^27.
func (r Ray) MulRad(d Rad) (Rad, error) {
	z, err := r.raw.mulDivWide(d.raw, pow10[RayScale])
	if err != nil {
		return Rad{}, fmt.Errorf("computing [%v * %v]: %w", r, d, err)
	}
	return Rad{raw: z}, nil
}

// MulWad returns d * w as a rad.
// The raw value of the result is d.raw * w.raw / 10^18.
func (d Rad) MulWad(w Wad) (Rad, error) {
	z, err := d.raw.mulDivWide(w.raw, pow10[WadScale])
	if err != nil {
		return Rad{}, fmt.Errorf("computing [%v * %v]: %w", d, w, err)
	}
	return Rad{raw: z}, nil
}

// MulRay returns d * r as a rad.
// The raw value of the result is d.raw * r.raw / 10^27.
func (d Rad) MulRay(r Ray) (Rad, error) {
	z, err := d.raw.mulDivWide(r.raw, pow10[RayScale])
	if err != nil {
		return Rad{}, fmt.Errorf("computing [%v * %v]: %w", d, r, err)
	}
	return Rad{raw: z}, nil
}

// Division across scales.
//
// Quotients are truncated towards zero, a zero divisor is an error.

// QuoRay returns w / r as a wad.
// The raw value of the result is w.raw * 10^27 / r.raw.
func (w Wad) QuoRay(r Ray) (Wad, error) {
	z, err := w.raw.mulDiv(pow10[RayScale], r.raw)
	if err != nil {
		return Wad{}, fmt.Errorf("computing [%v / %v]: %w", w, r, err)
	}
	return Wad{raw: z}, nil
}

// QuoWad returns r / w as a ray.
// The raw value of the result is r.raw * 10^18 / w.raw.
func (r Ray) QuoWad(w Wad) (Ray, error) {
	z, err := r.raw.mulDiv(pow10[WadScale], w.raw)
	if err != nil {
		return Ray{}, fmt.Errorf("computing [%v / %v]: %w", r, w, err)
	}
	return Ray{raw: z}, nil
}

// QuoWad returns d / w as a rad.
// The raw value of the result is d.raw * 10^18 / w.raw.
func (d Rad) QuoWad(w Wad) (Rad, error) {
	z, err := d.raw.mulDivWide(pow10[WadScale], w.raw)
	if err != nil {
		return Rad{}, fmt.Errorf("computing [%v / %v]: %w", d, w, err)
	}
	return Rad{raw: z}, nil
}

// QuoRay returns d / r as a rad.
// The raw value of the result is d.raw * 10^27 / r.raw.
func (d Rad) QuoRay(r Ray) (Rad, error) {
	z, err := d.raw.mulDivWide(pow10[RayScale], r.raw)
	if err != nil {
		return Rad{}, fmt.Errorf("computing [%v / %v]: %w", d, r, err)
	}
	return Rad{raw: z}, nil
}

// QuoWadToRay returns d / w as a ray.
// The raw value of the result is d.raw / w.raw, no rescaling is needed.
func (d Rad) QuoWadToRay(w Wad) (Ray, error) {
	z, err := d.raw.quo(w.raw)
	if err != nil {
		return Ray{}, fmt.Errorf("computing [%v / %v]: %w", d, w, err)
	}
	return Ray{raw: z}, nil
}

// QuoRayToWad returns d / r as a wad.
// The raw value of the result is d.raw / r.raw, no rescaling is needed.
func (d Rad) QuoRayToWad(r Ray) (Wad, error) {
	z, err := d.raw.quo(r.raw)
	if err != nil {
		return Wad{}, fmt.Errorf("computing [%v / %v]: %w", d, r, err)
	}
	return Wad{raw: z}, nil
}
