package spectrum

// Bucket averages a snapshot into bars values. Each bar covers an equal
// slice of the bins; when there are more bars than bins, bars repeat the
// nearest bin.
func Bucket(snapshot []byte, bars int) []byte {
	if bars <= 0 {
		return nil
	}
	out := make([]byte, bars)
	BucketInto(out, snapshot)
	return out
}

// BucketInto is Bucket writing into dst, one value per element.
func BucketInto(dst, snapshot []byte) {
	bars, bins := len(dst), len(snapshot)
	if bins == 0 {
		clear(dst)
		return
	}
	for i := range dst {
		lo := i * bins / bars
		hi := (i + 1) * bins / bars
		if hi <= lo {
			dst[i] = snapshot[lo]
			continue
		}
		sum := 0
		for _, v := range snapshot[lo:hi] {
			sum += int(v)
		}
		dst[i] = byte(sum / (hi - lo))
	}
}
