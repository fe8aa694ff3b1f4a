package request

import "strings"

// Rank is a canonical taxonomic rank, ordered from domain to species. Its
// integer value doubles as the rank's position inside a lineage string.
type Rank int

const (
	RankDomain Rank = iota
	RankPhylum
	RankClass
	RankOrder
	RankFamily
	RankGenus
	RankSpecies
)

func (r Rank) String() string {
	switch r {
	case RankDomain:
		return "domain"
	case RankPhylum:
		return "phylum"
	case RankClass:
		return "class"
	case RankOrder:
		return "order"
	case RankFamily:
		return "family"
	case RankGenus:
		return "genus"
	case RankSpecies:
		return "species"
	default:
		return "unknown"
	}
}

// Index is the position of this rank inside a parsed lineage.
func (r Rank) Index() int {
	return int(r)
}

// ParseRank maps a rank query value onto a Rank, case-insensitively.
// Unrecognized or empty values fall back to the call site's default rank.
func ParseRank(raw string, fallback Rank) Rank {
	switch strings.ToLower(raw) {
	case "domain":
		return RankDomain
	case "phylum":
		return RankPhylum
	case "class":
		return RankClass
	case "order":
		return RankOrder
	case "family":
		return RankFamily
	case "genus":
		return RankGenus
	case "species":
		return RankSpecies
	default:
		return fallback
	}
}
