// Package export renders the filtered building selection as CSV for
// download.
package export

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/Torido-Mir/CxC2026/internal/models"
)

// ErrNoBuildings is returned when the current filters match nothing
var ErrNoBuildings = errors.New("no buildings match the current filters")

// Filename is the suggested download name
const Filename = "uhi_buildings_filtered.csv"

// Column order is fixed and mirrors the enriched dataset fields
var header = []string{
	"OBJECTID",
	"Municipality",
	"Settlement",
	"FootprintSqft",
	"Storeys",
	"TotalSqft",
	"BuildingType",
	"size_eligible",
	"storey_category",
	"svr_proxy",
}

// WriteCSV writes the buildings as CSV. Values are joined with plain commas
// and never quote-escaped; the dataset fields contain no commas.
func WriteCSV(w io.Writer, buildings []models.Building) error {
	if len(buildings) == 0 {
		return ErrNoBuildings
	}

	var sb strings.Builder
	sb.WriteString(strings.Join(header, ","))
	sb.WriteByte('\n')

	for _, b := range buildings {
		row := []string{
			strconv.FormatInt(b.ObjectID, 10),
			b.Municipality,
			b.Settlement,
			formatFloat(b.FootprintSqft),
			formatFloat(b.Storeys),
			formatFloat(b.TotalSqft),
			b.BuildingType,
			formatBool(b.SizeEligible),
			b.StoreyCat,
			formatFloat(b.SVRProxy),
		}
		sb.WriteString(strings.Join(row, ","))
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatBool(v bool) string {
	if v {
		return "True"
	}
	return "False"
}
