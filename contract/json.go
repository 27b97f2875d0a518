package contract

import (
	"buymeacoffee/sdk"

	"github.com/CosmWasm/tinyjson/jlexer"
	"github.com/CosmWasm/tinyjson/jwriter"
)

// tinyjson codecs for the wire-facing types. Kept by hand instead of generated
// since the shapes are tiny and the wasm build has no generator step.

// MarshalTinyJSON writes one donation as a JSON object.
func (v SaleRecord) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawByte('{')
	w.RawString(`"timestamp":`)
	w.Int64(v.Timestamp)
	w.RawString(`,"from":`)
	w.String(v.From.String())
	w.RawString(`,"to":`)
	w.String(v.To.String())
	w.RawString(`,"value":`)
	w.Int64(int64(v.Value))
	w.RawString(`,"name":`)
	w.String(v.Name)
	w.RawString(`,"message":`)
	w.String(v.Message)
	w.RawByte('}')
}

// UnmarshalTinyJSON reads one donation object, skipping unknown fields.
func (v *SaleRecord) UnmarshalTinyJSON(l *jlexer.Lexer) {
	isTopLevel := l.IsStart()
	if l.IsNull() {
		if isTopLevel {
			l.Consumed()
		}
		l.Skip()
		return
	}
	l.Delim('{')
	for !l.IsDelim('}') {
		key := l.UnsafeFieldName(false)
		l.WantColon()
		if l.IsNull() {
			l.Skip()
			l.WantComma()
			continue
		}
		switch key {
		case "timestamp":
			v.Timestamp = l.Int64()
		case "from":
			v.From = sdk.Address(l.String())
		case "to":
			v.To = sdk.Address(l.String())
		case "value":
			v.Value = Amount(l.Int64())
		case "name":
			v.Name = l.String()
		case "message":
			v.Message = l.String()
		default:
			l.SkipRecursive()
		}
		l.WantComma()
	}
	l.Delim('}')
	if isTopLevel {
		l.Consumed()
	}
}

// MarshalTinyJSON writes the ledger as a JSON array in insertion order.
func (v SaleList) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawByte('[')
	for i, rec := range v {
		if i > 0 {
			w.RawByte(',')
		}
		rec.MarshalTinyJSON(w)
	}
	w.RawByte(']')
}

// UnmarshalTinyJSON reads a full ledger array.
func (v *SaleList) UnmarshalTinyJSON(l *jlexer.Lexer) {
	isTopLevel := l.IsStart()
	if l.IsNull() {
		if isTopLevel {
			l.Consumed()
		}
		l.Skip()
		*v = nil
		return
	}
	out := make(SaleList, 0)
	l.Delim('[')
	for !l.IsDelim(']') {
		var rec SaleRecord
		rec.UnmarshalTinyJSON(l)
		out = append(out, rec)
		l.WantComma()
	}
	l.Delim(']')
	if isTopLevel {
		l.Consumed()
	}
	*v = out
}

// UnmarshalTinyJSON reads the coffee_buy args object.
func (v *BuyArgs) UnmarshalTinyJSON(l *jlexer.Lexer) {
	isTopLevel := l.IsStart()
	if l.IsNull() {
		if isTopLevel {
			l.Consumed()
		}
		l.Skip()
		return
	}
	l.Delim('{')
	for !l.IsDelim('}') {
		key := l.UnsafeFieldName(false)
		l.WantColon()
		if l.IsNull() {
			l.Skip()
			l.WantComma()
			continue
		}
		switch key {
		case "name":
			v.Name = l.String()
		case "message":
			v.Message = l.String()
		default:
			l.SkipRecursive()
		}
		l.WantComma()
	}
	l.Delim('}')
	if isTopLevel {
		l.Consumed()
	}
}

// MarshalTinyJSON writes the coffee_buy args object (client side).
func (v BuyArgs) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawByte('{')
	w.RawString(`"name":`)
	w.String(v.Name)
	w.RawString(`,"message":`)
	w.String(v.Message)
	w.RawByte('}')
}

// UnmarshalTinyJSON reads the coffee_send args object.
func (v *SendArgs) UnmarshalTinyJSON(l *jlexer.Lexer) {
	isTopLevel := l.IsStart()
	if l.IsNull() {
		if isTopLevel {
			l.Consumed()
		}
		l.Skip()
		return
	}
	l.Delim('{')
	for !l.IsDelim('}') {
		key := l.UnsafeFieldName(false)
		l.WantColon()
		if l.IsNull() {
			l.Skip()
			l.WantComma()
			continue
		}
		switch key {
		case "to":
			v.To = l.String()
		case "name":
			v.Name = l.String()
		case "message":
			v.Message = l.String()
		default:
			l.SkipRecursive()
		}
		l.WantComma()
	}
	l.Delim('}')
	if isTopLevel {
		l.Consumed()
	}
}

// MarshalTinyJSON writes the coffee_send args object (client side).
func (v SendArgs) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawByte('{')
	w.RawString(`"to":`)
	w.String(v.To)
	w.RawString(`,"name":`)
	w.String(v.Name)
	w.RawString(`,"message":`)
	w.String(v.Message)
	w.RawByte('}')
}
