package objects

// MapToCurrentIdentifier translates an identifier written by an older
// format revision to the one in current use. Identifiers absent from the
// table pass through unchanged; the function is pure and total.
//
// Remapping applies only while decoding modern-form descriptors; writers
// always emit current identifiers.
func MapToCurrentIdentifier(s string) string {
	if cur, ok := oldObjectIDs[s]; ok {
		return cur
	}
	return s
}
