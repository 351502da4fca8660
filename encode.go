package fundsplit

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// jsonObjectWriter builds a JSON object with a fixed field order, so the
// ledger file diffs cleanly and round-trips byte-stable. Its zero value is
// ready to use.
type jsonObjectWriter struct {
	bytes.Buffer
	err error
}

// Append adds a key-value pair, marshaling the value with json.Marshal.
func (w *jsonObjectWriter) Append(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	valBytes, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal value for key %q: %w", key, err)
		return w
	}
	fmt.Fprintf(w, "%q:", key)
	w.Write(valBytes)
	w.WriteString(",")
	return w
}

// MarshalJSON wraps the accumulated fields in braces.
func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	content := bytes.TrimSuffix(w.Bytes(), []byte(","))
	final := make([]byte, 0, len(content)+2)
	final = append(final, '{')
	final = append(final, content...)
	final = append(final, '}')
	return final, nil
}

// EncodeLeg writes one leg as a JSON line. Field order is fixed to the
// wire contract so encode∘decode is the identity on the file.
func EncodeLeg(w io.Writer, leg CashflowLeg) error {
	var obj jsonObjectWriter
	obj.Append("id", leg.ID).
		Append("owner", leg.Owner).
		Append("participantName", leg.ParticipantName).
		Append("legType", leg.Type).
		Append("amount", leg.Amount).
		Append("timestamp", leg.Timestamp).
		Append("earnsDollarDaysThisWindow", leg.EarnsDollarDays)
	data, err := obj.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to encode leg %q: %w", leg.ID, err)
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}

// EncodeLedger writes the ledger as JSONL, one leg per line, in ledger
// order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for leg := range l.Legs() {
		if err := EncodeLeg(w, leg); err != nil {
			return err
		}
	}
	return nil
}

// DecodeLedger reads a JSONL stream of legs and returns a sorted ledger.
// Empty lines are skipped; an unknown owner or leg type fails the whole
// decode rather than silently dropping capital.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		lineBytes := bytes.TrimSpace(scanner.Bytes())
		if len(lineBytes) == 0 {
			continue
		}
		var leg CashflowLeg
		if err := json.Unmarshal(lineBytes, &leg); err != nil {
			return nil, fmt.Errorf("line %d: could not decode leg: %w", line, err)
		}
		if _, err := ParseOwner(string(leg.Owner)); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if err := checkLegType(leg.Type); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		ledger.Append(leg)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ledger: %w", err)
	}
	return ledger, nil
}

func checkLegType(t LegType) error {
	switch t {
	case LegSeed, LegContribution, LegEntryFee, LegMgmtFee, LegMoonbagFounder, LegMoonbagInvest, LegDraw:
		return nil
	default:
		return fmt.Errorf("unknown leg type %q", t)
	}
}

// EncodeWalletState writes the wallet state as indented JSON.
func EncodeWalletState(w io.Writer, state WalletState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode wallet state: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}

// DecodeWalletState reads a wallet state written by EncodeWalletState.
func DecodeWalletState(r io.Reader) (WalletState, error) {
	var state WalletState
	if err := json.NewDecoder(r).Decode(&state); err != nil {
		return WalletState{}, fmt.Errorf("failed to decode wallet state: %w", err)
	}
	return state, nil
}
