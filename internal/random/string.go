package random

// ASCIIString generates random ASCII string of length in [minLen, maxLen).
// First character is never a digit.
func ASCIIString(minLen, maxLen int) string {
	const letters = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFJHIJKLMNOPQRSTUVWXYZ"

	slen := Int(minLen, maxLen)

	s := make([]byte, 0, slen)
	for len(s) < slen {
		char := letters[rnd.Intn(len(letters))]
		if len(s) == 0 && '0' <= char && char <= '9' {
			continue
		}
		s = append(s, char)
	}

	return string(s)
}
