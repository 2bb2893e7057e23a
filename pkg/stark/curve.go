package stark

import (
	"math/big"

	starkcurve "github.com/consensys/gnark-crypto/ecc/stark-curve"
	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
	"github.com/consensys/gnark-crypto/ecc/stark-curve/fr"
)

var (
	curveOrder = fr.Modulus()
	// Signed values and the r, w signature components must fit in 251 bits.
	elementBound = new(big.Int).Lsh(big.NewInt(1), 251)
)

func mulBase(scalar *big.Int) starkcurve.G1Affine {
	var result starkcurve.G1Affine
	result.ScalarMultiplicationBase(scalar)
	return result
}

func xCoordinate(p *starkcurve.G1Affine) *big.Int {
	return p.X.BigInt(new(big.Int))
}

// pointFromX recovers one of the two points with the given x coordinate.
func pointFromX(x *big.Int) (starkcurve.G1Affine, bool) {
	var p starkcurve.G1Affine
	if x.Sign() < 0 || x.Cmp(fp.Modulus()) >= 0 {
		return p, false
	}
	p.X.SetBigInt(x)

	// y^2 = x^3 + a*x + b
	a, b := starkcurve.CurveCoefficients()
	var rhs, ax fp.Element
	rhs.Square(&p.X).Mul(&rhs, &p.X)
	ax.Mul(&a, &p.X)
	rhs.Add(&rhs, &ax).Add(&rhs, &b)
	if p.Y.Sqrt(&rhs) == nil {
		return p, false
	}
	return p, true
}

// scalarDiv returns numerator / denominator modulo the curve order.
func scalarDiv(numerator *big.Int, denominator *big.Int) *big.Int {
	var n, d fr.Element
	n.SetBigInt(numerator)
	d.SetBigInt(denominator)
	n.Div(&n, &d)
	return n.BigInt(new(big.Int))
}

func scalarInverse(value *big.Int) *big.Int {
	var e fr.Element
	e.SetBigInt(value)
	e.Inverse(&e)
	return e.BigInt(new(big.Int))
}
