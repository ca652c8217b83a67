package mdd

import (
	"strings"
	"unicode"
)

// recordTypePrefix marks columns scoped to the database itself, such as
// MDD_syn_id in the synonym table. The prefix is dropped before the
// canonical lowerCamel rewrite.
const recordTypePrefix = "MDD_"

// NormalizeHeader converts a raw CSV header token into the canonical
// lowerCamel form used by the rest of the pipeline.
//
// The rewrite strips the record-type prefix when present, splits the
// remainder on underscores and re-joins it in lowerCamel. Tokens without
// underscores only get their first rune lowercased, so already-normalized
// headers pass through unchanged; normalization is idempotent:
//
//	NormalizeHeader("MDD_syn_id")    // "synId"
//	NormalizeHeader("species_id")    // "speciesId"
//	NormalizeHeader("sciName")       // "sciName"
//	NormalizeHeader("typeVoucherURIs") // "typeVoucherURIs"
//
// Unknown or irregular tokens are never dropped.
func NormalizeHeader(header string) string {
	h := strings.TrimSpace(header)
	h = strings.TrimPrefix(h, recordTypePrefix)
	if h == "" {
		return h
	}

	parts := strings.Split(h, "_")
	if len(parts) == 1 {
		return lowerFirst(parts[0])
	}

	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		if b.Len() == 0 {
			b.WriteString(strings.ToLower(p))
			continue
		}
		b.WriteString(upperFirst(p))
	}
	return b.String()
}

// NormalizeHeaders applies NormalizeHeader to every token of a header row.
func NormalizeHeaders(headers []string) []string {
	res := make([]string, len(headers))
	for i, h := range headers {
		res[i] = NormalizeHeader(h)
	}
	return res
}

func lowerFirst(s string) string {
	rs := []rune(s)
	if len(rs) == 0 {
		return s
	}
	rs[0] = unicode.ToLower(rs[0])
	return string(rs)
}

func upperFirst(s string) string {
	rs := []rune(s)
	if len(rs) == 0 {
		return s
	}
	rs[0] = unicode.ToUpper(rs[0])
	return string(rs)
}
