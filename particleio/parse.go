package particleio

import "strconv"

func parseInt(s string) (int, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
