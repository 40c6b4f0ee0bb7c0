package common

func File(sq int) int {
	return sq & 7
}

func Rank(sq int) int {
	return sq >> 3
}

const (
	fileNames = "abcdefgh"
	rankNames = "12345678"
)

func SquareName(sq int) string {
	if sq < 0 || sq >= 64 {
		return "-"
	}
	var file = fileNames[File(sq)]
	var rank = rankNames[Rank(sq)]
	return string(file) + string(rank)
}
