package handlejson

import "strconv"

// reviveTree walks the decoded tree bottom-up, applying date revival and
// then the caller's Reviver hook at every node. The hook therefore receives
// ISO-shaped strings already converted to time.Time. The root node is
// visited last with an empty key, mirroring the decode primitive's reviver
// contract.
func reviveTree(key string, v any, opt ParseOpt) any {
	switch vv := v.(type) {
	case map[string]any:
		for k, elem := range vv {
			vv[k] = reviveTree(k, elem, opt)
		}
	case []any:
		for i := range vv {
			vv[i] = reviveTree(strconv.Itoa(i), vv[i], opt)
		}
	case string:
		if opt.ReviveDates && looksLikeISODate(vv) {
			if t, err := parseISODate(vv); err == nil {
				v = t
			}
		}
	}
	if opt.Reviver != nil {
		return opt.Reviver(key, v)
	}
	return v
}

// needsRevive reports whether the revive walk would do any work at all.
func needsRevive(opt ParseOpt) bool {
	return opt.ReviveDates || opt.Reviver != nil
}
