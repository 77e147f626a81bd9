package domain

// PreferenceAlpha is the EMA weight given to the existing preference vector
// when blending in a new interaction signal. History dominates so a single
// interaction nudges the preference rather than overwriting it.
const PreferenceAlpha = 0.85

// bootstrapDamping is applied when the very first signal for a user is
// negative, so a disliked video seeds a damped preference instead of a
// full-strength one.
const bootstrapDamping = 0.5

// UpdatePreference blends a video's embedding into the user's preference
// vector using the interaction weight. A nil current preference bootstraps
// directly from the video vector. The returned vector is a new slice; the
// caller persists it.
func UpdatePreference(current []float32, videoVector []float32, weight float32) ([]float32, error) {
	if current == nil {
		scalar := float32(1.0)
		if weight <= 0 {
			scalar = bootstrapDamping
		}
		return Scale(videoVector, scalar), nil
	}

	weighted := Scale(videoVector, weight)
	return Combine(current, PreferenceAlpha, weighted, 1-PreferenceAlpha)
}
