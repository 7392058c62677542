package lapsim

import (
	"encoding/csv"
	"io"
	"strconv"
)

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// WriteLapCSV writes every sample of the lap as `segment,t,x,y,v` records.
// Along-track segments leave y empty; the loop reports its angle as x.
func WriteLapCSV(w io.Writer, lap *Lap) error {
	out := csv.NewWriter(w)
	records := [][]string{{"segment", "t", "x", "y", "v"}}
	for i := 0; i < lap.SlopePosition.Len(); i++ {
		t, x := lap.SlopePosition.At(i)
		records = append(records, []string{PhaseSlope.String(), ftoa(t), ftoa(x), "", ftoa(lap.SlopeVelocity.At(i).Vx)})
	}
	for i := 0; i < lap.LoopAngle.Len(); i++ {
		t, θ := lap.LoopAngle.At(i)
		_, vt := lap.LoopVelocity.At(i)
		records = append(records, []string{PhaseLoop.String(), ftoa(t), ftoa(θ), "", ftoa(vt)})
	}
	for i := 0; i < lap.RavinePath.Len(); i++ {
		x, y := lap.RavinePath.At(i)
		s := lap.RavineVelocity.At(i)
		records = append(records, []string{PhaseRavine.String(), ftoa(s.T), ftoa(x), ftoa(y), ftoa(s.Speed)})
	}
	for i := 0; i < lap.FinishPosition.Len(); i++ {
		t, x := lap.FinishPosition.At(i)
		records = append(records, []string{PhaseFinish.String(), ftoa(t), ftoa(x), "", ftoa(lap.FinishVelocity.At(i).Vx)})
	}
	return writeAll(out, records)
}

// WriteResultsCSV writes one record per result. Failed evaluations have an empty time and an error.
func WriteResultsCSV(w io.Writer, results []Result) error {
	out := csv.NewWriter(w)
	hdr := []string{"vehicle", "boost", "wing", "skirt", "time"}
	for _, p := range Segments {
		hdr = append(hdr, p.String())
	}
	records := [][]string{append(hdr, "error")}
	for _, rslt := range results {
		record := []string{rslt.Vehicle, rslt.Boost.String(), strconv.FormatBool(rslt.Wing), strconv.FormatBool(rslt.Skirt)}
		if rslt.OK() {
			record = append(record, ftoa(rslt.Time))
			for _, split := range rslt.Splits {
				record = append(record, ftoa(split))
			}
			record = append(record, "")
		} else {
			record = append(record, "", "", "", "", "", rslt.Err.Error())
		}
		records = append(records, record)
	}
	return writeAll(out, records)
}

// writeAll stops at the first failing record.
func writeAll(out *csv.Writer, records [][]string) error {
	for _, record := range records {
		if err := out.Write(record); err != nil {
			return err
		}
	}
	out.Flush()
	return out.Error()
}
