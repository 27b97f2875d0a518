package contract

import (
	"strconv"
	"strings"

	"buymeacoffee/sdk"

	"github.com/CosmWasm/tinyjson/jlexer"
)

// Call payloads are small JSON objects. Name and message are free text chosen
// by the caller, so a delimited format is out; the lexer copes with anything.

// decodeBuyArgs unpacks the coffee_buy payload: {"name":..., "message":...}
func decodeBuyArgs(payload *string) *BuyArgs {
	raw := unwrapPayload(payload, "coffee payload missing")
	args := &BuyArgs{}
	l := jlexer.Lexer{Data: []byte(raw)}
	args.UnmarshalTinyJSON(&l)
	if err := l.Error(); err != nil {
		sdk.Abort("invalid coffee payload: " + err.Error())
	}
	return args
}

// decodeSendArgs unpacks the coffee_send payload: {"to":..., "name":..., "message":...}
func decodeSendArgs(payload *string) *SendArgs {
	raw := unwrapPayload(payload, "coffee payload missing")
	args := &SendArgs{}
	l := jlexer.Lexer{Data: []byte(raw)}
	args.UnmarshalTinyJSON(&l)
	if err := l.Error(); err != nil {
		sdk.Abort("invalid coffee payload: " + err.Error())
	}
	return args
}

// unwrapPayload trims quotes and whitespace, aborting if the payload is empty.
func unwrapPayload(payload *string, errMsg string) string {
	if payload == nil {
		sdk.Abort(errMsg)
	}
	raw := strings.TrimSpace(*payload)
	if raw == "" {
		sdk.Abort(errMsg)
	}
	if len(raw) >= 2 {
		first := raw[0]
		last := raw[len(raw)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			if unquoted, err := strconv.Unquote(raw); err == nil {
				return unquoted
			}
			raw = strings.TrimSpace(raw[1 : len(raw)-1])
			if raw == "" {
				sdk.Abort(errMsg)
			}
		}
	}
	return raw
}
