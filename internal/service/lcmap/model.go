package lcmap

import (
	"fmt"

	"github.com/oshokin/lcmap-client/internal/client/lcmap"
)

// TileQuery selects surface reflectance data by band, point and time range.
type TileQuery struct {
	// Band is the unique band identifier (e.g. "LANDSAT_8/OLI_TIRS/sr_band1").
	Band string `json:"band"`
	// X is the projection x coordinate of the point.
	X int64 `json:"x"`
	// Y is the projection y coordinate of the point.
	Y int64 `json:"y"`
	// Time is an ISO-8601 acquisition range (e.g. "2013-01-01/2015-01-01"). Empty means any time.
	Time string `json:"time,omitempty"`
}

// Validate checks that the query names a band.
func (q TileQuery) Validate() error {
	if q.Band == "" {
		return ErrEmptyBand
	}

	return nil
}

func (q TileQuery) params() lcmap.Values {
	params := lcmap.Values{
		"band":  q.Band,
		"point": fmt.Sprintf("%d,%d", q.X, q.Y),
	}

	if q.Time != "" {
		params["time"] = q.Time
	}

	return params
}

// Tile is a single acquisition of a band over a tile.
type Tile struct {
	// UBID is the unique band identifier.
	UBID string `json:"ubid"`
	// X is the projection x coordinate of the tile's upper left corner.
	X int64 `json:"x"`
	// Y is the projection y coordinate of the tile's upper left corner.
	Y int64 `json:"y"`
	// Acquired is the acquisition timestamp.
	Acquired string `json:"acquired"`
	// Source is the scene the tile was cut from.
	Source string `json:"source,omitempty"`
	// Data is the raw tile payload.
	Data []byte `json:"data,omitempty"`
}

// RodPoint is the value of a band at a single point and acquisition.
type RodPoint struct {
	// X is the projection x coordinate.
	X int64 `json:"x"`
	// Y is the projection y coordinate.
	Y int64 `json:"y"`
	// Acquired is the acquisition timestamp.
	Acquired string `json:"acquired"`
	// Value is the band value at the point.
	Value float64 `json:"value"`
}

// Job is a model run started on the server.
type Job struct {
	// Link is the path the job result is served from.
	Link string `json:"link"`
	// Response is the decoded response the link was read from.
	Response any `json:"-"`
}

// SampleModelRequest holds the parameters of the sample model.
type SampleModelRequest struct {
	// Seconds is how long the sample process sleeps.
	Seconds int `json:"seconds"`
	// Year is the year passed to the sample process.
	Year int `json:"year"`
}
