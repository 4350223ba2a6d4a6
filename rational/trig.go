package rational

import "fmt"

// trigCache memoizes Sin/Cos results by (angle key, term count); it is a
// process-wide table guarded only by the single-threaded-use assumption
// documented for the mesh rotation helpers that are its only callers (base
// spec section 5).
var trigCache = map[string]Number{}

// Sin returns an approximation of sin(angle) as an exact rational, computed
// via the first terms of the Maclaurin series. It exists only to support
// rigid mesh rotation in the test harness (base spec 4.1); no geometric
// predicate in this module uses it.
//
// angle is in radians, represented exactly as a Number (the caller
// typically builds it from a small rational multiple of pi approximated
// to the desired precision). terms controls the truncation order; with 12
// terms the truncation error stays below about 3e-5 over |angle| <= 2*pi
// and far below double precision over |angle| <= 1.
func Sin(angle Number, terms int) Number {
	key := fmt.Sprintf("sin:%s:%d", angle.Key(), terms)
	if v, ok := trigCache[key]; ok {
		return v
	}
	v := maclaurin(angle, terms, true)
	trigCache[key] = v
	return v
}

// Cos is Sin's counterpart, approximating cos(angle).
func Cos(angle Number, terms int) Number {
	key := fmt.Sprintf("cos:%s:%d", angle.Key(), terms)
	if v, ok := trigCache[key]; ok {
		return v
	}
	v := maclaurin(angle, terms, false)
	trigCache[key] = v
	return v
}

// maclaurin evaluates the truncated sine or cosine series:
//
//	sin(x) = sum_{k=0}^{terms-1} (-1)^k x^(2k+1) / (2k+1)!
//	cos(x) = sum_{k=0}^{terms-1} (-1)^k x^(2k)   / (2k)!
//
// entirely in exact rational arithmetic.
func maclaurin(x Number, terms int, sine bool) Number {
	sum := Zero
	term := One
	if sine {
		term = x
	}
	x2 := x.Mul(x)
	startPower := 0
	if sine {
		startPower = 1
	}
	for k := 0; k < terms; k++ {
		sign := One
		if k%2 == 1 {
			sign = sign.Neg()
		}
		sum = sum.Add(term.Mul(sign).Div(factorial(startPower + 2*k)))
		term = term.Mul(x2)
	}
	return sum
}

var factorialCache = map[int]Number{0: One}

// factorial returns n! as an exact rational, memoized alongside the trig
// cache under the same single-threaded-use assumption.
func factorial(n int) Number {
	if v, ok := factorialCache[n]; ok {
		return v
	}
	prev := factorial(n - 1)
	v := prev.Mul(FromInt64(int64(n), 1))
	factorialCache[n] = v
	return v
}
