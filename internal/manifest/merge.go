package manifest

// Merge combines a freshly generated manifest with one loaded from an
// existing pack. Neither argument is modified.
//
// Events only present in incoming are copied as-is. For events present in
// both, sounds are unioned by value and re-sorted by name. The existing
// event's replace directive is kept as-is, including its absence, and its
// subtitle wins whenever it has one. Incoming only supplies a subtitle the
// existing event lacks. Keys the manifest does not model follow the same
// rule as the subtitle.
func Merge(incoming, existing Manifest) Manifest {
	result := existing.Clone()

	for name, in := range incoming {
		current, ok := result[name]
		if !ok || current == nil {
			result[name] = in.Clone()
			continue
		}
		if in == nil {
			continue
		}

		current.AddSounds(in.Sounds...)
		if current.Subtitle == nil && in.Subtitle != nil {
			current.Subtitle = clonePtr(in.Subtitle)
		}
		current.Extra = current.Extra.fill(in.Extra)
	}

	result.Canonicalize()
	return result
}
