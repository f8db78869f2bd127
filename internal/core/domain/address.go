package domain

// AddressCandidate is a corrected address proposed by the carrier.
type AddressCandidate struct {
	Score       int         `json:"score"`
	Location    Location    `json:"location"`
	AddressType AddressType `json:"address_type"`
}

// AddressValidationResponse keeps candidates in the order the carrier sent
// them; the carrier does not guarantee score ordering.
type AddressValidationResponse struct {
	Success    bool               `json:"success"`
	Message    string             `json:"message"`
	XML        string             `json:"-"`
	Candidates []AddressCandidate `json:"candidates"`
}
