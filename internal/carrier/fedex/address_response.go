package fedex

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/99minutos/carrier-gateway/internal/core/domain"
)

// addressValidationNS is the prefix FedEx puts on every address validation
// reply element. These replies are traversed with their prefixes intact.
const addressValidationNS = "v2"

var residentialStatuses = map[string]domain.AddressType{
	"RESIDENTIAL": domain.AddressResidential,
	"BUSINESS":    domain.AddressCommercial,
}

// ParseAddressValidationResponse turns an AddressValidationReply into
// candidates, in the order FedEx sent them.
func ParseAddressValidationResponse(raw string) (*domain.AddressValidationResponse, error) {
	return parseAddressValidation(raw, addressValidationNS)
}

func parseAddressValidation(raw, ns string) (*domain.AddressValidationResponse, error) {
	root, err := readReply(raw, "AddressValidationReply", ns)
	if err != nil {
		return nil, fmt.Errorf("parse address validation reply: %w", err)
	}

	status := readStatus(root, ns)
	resp := &domain.AddressValidationResponse{
		Success:    status.success,
		Message:    status.message,
		XML:        raw,
		Candidates: []domain.AddressCandidate{},
	}

	results := root.SelectElement(qualify(ns, "AddressResults"))
	if results == nil {
		return resp, nil
	}

	// The first entry echoes the AddressId we sent and is never a candidate.
	// It is dropped unconditionally; see DESIGN.md.
	entries := results.ChildElements()
	if len(entries) > 0 {
		entries = entries[1:]
	}

	for i, entry := range entries {
		candidate, err := addressCandidate(entry, ns)
		if err != nil {
			return nil, fmt.Errorf("parse address validation reply: candidate %d: %w", i+1, err)
		}
		resp.Candidates = append(resp.Candidates, candidate)
	}
	return resp, nil
}

func addressCandidate(e *etree.Element, ns string) (domain.AddressCandidate, error) {
	rawScore := childText(e, ns, "Score")
	score, err := strconv.Atoi(rawScore)
	if err != nil {
		return domain.AddressCandidate{}, fmt.Errorf("%w: score %q", domain.ErrBadResponse, rawScore)
	}

	addressType, ok := residentialStatuses[childText(e, ns, "ResidentialStatus")]
	if !ok {
		addressType = domain.AddressUnknown
	}

	addr := e.SelectElement(qualify(ns, "Address"))
	if addr == nil || len(addr.ChildElements()) == 0 {
		return domain.AddressCandidate{}, fmt.Errorf("%w: empty address block", domain.ErrBadResponse)
	}

	loc := domain.Location{
		City:        childText(addr, ns, "City"),
		State:       childText(addr, ns, "StateOrProvinceCode"),
		PostalCode:  childText(addr, ns, "PostalCode"),
		CountryCode: childText(addr, ns, "CountryCode"),
		AddressType: addressType,
	}
	lines := addr.SelectElements(qualify(ns, "StreetLines"))
	for i, street := range []*string{&loc.Address1, &loc.Address2, &loc.Address3} {
		if i < len(lines) {
			*street = strings.TrimSpace(lines[i].Text())
		}
	}

	return domain.AddressCandidate{
		Score:       score,
		Location:    loc,
		AddressType: addressType,
	}, nil
}
