package value

type refPair struct{ a, b any }

// Equal reports whether a and b are structurally equal.
//
// Objects must hold the same keys in the same order. Numbers compare by their
// canonical text, so int64(1) equals float64(1). Opaque values compare by
// their fallback text. Pairs of references already under comparison are
// assumed equal, which makes Equal terminate on cyclic graphs.
func Equal(a, b any) bool {
	return equal(a, b, make(map[refPair]bool))
}

func equal(a, b any, active map[refPair]bool) bool {
	ka, kb := KindOf(a), KindOf(b)
	if ka != kb {
		return false
	}
	switch ka {
	case KindNull:
		return true
	case KindBool:
		return a.(bool) == b.(bool)
	case KindNumber:
		ta, _ := FormatNumber(a)
		tb, _ := FormatNumber(b)
		return ta == tb
	case KindString:
		return a.(string) == b.(string)
	case KindOpaque:
		return OpaqueText(a) == OpaqueText(b)
	}

	p := refPair{a, b}
	if active[p] {
		return true
	}
	active[p] = true
	defer delete(active, p)

	if ka == KindArray {
		aa, ab := a.(*Array), b.(*Array)
		if len(aa.Items) != len(ab.Items) {
			return false
		}
		for i := range aa.Items {
			if !equal(aa.Items[i], ab.Items[i], active) {
				return false
			}
		}
		return true
	}

	oa, ob := a.(*Object), b.(*Object)
	if len(oa.keys) != len(ob.keys) {
		return false
	}
	for i, k := range oa.keys {
		if ob.keys[i] != k {
			return false
		}
		if !equal(oa.values[k], ob.values[k], active) {
			return false
		}
	}
	return true
}
