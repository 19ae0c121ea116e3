// Package export writes and reads the baccarat round history as CSV or TSV.
package export

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"casino-sim/internal/baccarat"
	"casino-sim/internal/locale"
)

var (
	ErrUnknownFormat = errors.New("unknown_format")
	ErrMalformedRow  = errors.New("malformed_row")
)

type Format string

const (
	FormatCSV Format = "csv"
	FormatTSV Format = "tsv"
)

const bom = "\uFEFF"

const columns = 8

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatTSV:
		return FormatTSV, nil
	}
	return "", fmt.Errorf("format %q: %w", s, ErrUnknownFormat)
}

func (f Format) ContentType() string {
	if f == FormatTSV {
		return "text/tab-separated-values; charset=utf-8"
	}
	return "text/csv; charset=utf-8"
}

func (f Format) separator() rune {
	if f == FormatTSV {
		return '\t'
	}
	return ','
}

// FileName follows the download name used by the simulator UI.
func FileName(strategy baccarat.StrategyID, rounds int, f Format) string {
	return fmt.Sprintf("baccarat_%s_%dgames.%s", strategy, rounds, f)
}

// Write emits a header row and one row per round. CSV output starts with a
// UTF-8 byte order mark; TSV output does not.
func Write(w io.Writer, f Format, records []baccarat.RoundRecord, loc locale.Locale) error {
	if f != FormatCSV && f != FormatTSV {
		return ErrUnknownFormat
	}
	if f == FormatCSV {
		if _, err := io.WriteString(w, bom); err != nil {
			return err
		}
	}
	cw := csv.NewWriter(w)
	cw.Comma = f.separator()
	if err := cw.Write(loc.ExportHeaders()); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			strconv.Itoa(r.Round),
			loc.Target(r.Target),
			strconv.FormatInt(r.Bet, 10),
			loc.Result(r.Result),
			strconv.FormatInt(r.BalanceBefore, 10),
			strconv.FormatInt(r.BalanceAfter, 10),
			strconv.FormatInt(r.Delta(), 10),
			r.Action,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Parse reads back what Write produced. Only the exported fields are filled.
func Parse(r io.Reader, f Format, loc locale.Locale) ([]baccarat.RoundRecord, error) {
	if f != FormatCSV && f != FormatTSV {
		return nil, ErrUnknownFormat
	}
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(bom)); err == nil && bytes.Equal(head, []byte(bom)) {
		_, _ = br.Discard(len(bom))
	}
	cr := csv.NewReader(br)
	cr.Comma = f.separator()
	cr.FieldsPerRecord = columns

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	var out []baccarat.RoundRecord
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rec, err := parseRow(row, loc)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, rec)
	}
}

func parseRow(row []string, loc locale.Locale) (baccarat.RoundRecord, error) {
	var rec baccarat.RoundRecord
	round, err := strconv.Atoi(row[0])
	if err != nil {
		return rec, fmt.Errorf("round %q: %w", row[0], ErrMalformedRow)
	}
	target, ok := loc.ParseTarget(row[1])
	if !ok {
		return rec, fmt.Errorf("bet target %q: %w", row[1], ErrMalformedRow)
	}
	result, ok := loc.ParseResult(row[3])
	if !ok {
		return rec, fmt.Errorf("result %q: %w", row[3], ErrMalformedRow)
	}
	ints := make([]int64, 0, 4)
	for _, i := range []int{2, 4, 5, 6} {
		v, err := strconv.ParseInt(row[i], 10, 64)
		if err != nil {
			return rec, fmt.Errorf("column %d %q: %w", i+1, row[i], ErrMalformedRow)
		}
		ints = append(ints, v)
	}
	rec = baccarat.RoundRecord{
		Round:         round,
		Target:        target,
		Bet:           ints[0],
		Result:        result,
		BalanceBefore: ints[1],
		BalanceAfter:  ints[2],
		Action:        row[7],
	}
	if rec.Delta() != ints[3] {
		return rec, fmt.Errorf("delta %d does not match balances: %w", ints[3], ErrMalformedRow)
	}
	return rec, nil
}
