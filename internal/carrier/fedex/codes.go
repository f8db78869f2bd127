package fedex

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/99minutos/carrier-gateway/internal/core/domain"
)

const saturdayDeliverySuffix = "_SATURDAY_DELIVERY"

// CarrierCodes maps operating companies to their FedEx carrier codes.
var CarrierCodes = map[string]string{
	"fedex_ground":  "FDXG",
	"fedex_express": "FDXE",
}

// ServiceTypes maps service type codes, including synthesized Saturday
// delivery variants, to display names.
var ServiceTypes = map[string]string{
	"PRIORITY_OVERNIGHT":                       "FedEx Priority Overnight",
	"PRIORITY_OVERNIGHT_SATURDAY_DELIVERY":     "FedEx Priority Overnight Saturday Delivery",
	"FEDEX_2_DAY":                              "FedEx 2 Day",
	"FEDEX_2_DAY_SATURDAY_DELIVERY":            "FedEx 2 Day Saturday Delivery",
	"STANDARD_OVERNIGHT":                       "FedEx Standard Overnight",
	"FIRST_OVERNIGHT":                          "FedEx First Overnight",
	"FIRST_OVERNIGHT_SATURDAY_DELIVERY":        "FedEx First Overnight Saturday Delivery",
	"FEDEX_EXPRESS_SAVER":                      "FedEx Express Saver",
	"FEDEX_1_DAY_FREIGHT":                      "FedEx 1 Day Freight",
	"FEDEX_1_DAY_FREIGHT_SATURDAY_DELIVERY":    "FedEx 1 Day Freight Saturday Delivery",
	"FEDEX_2_DAY_FREIGHT":                      "FedEx 2 Day Freight",
	"FEDEX_2_DAY_FREIGHT_SATURDAY_DELIVERY":    "FedEx 2 Day Freight Saturday Delivery",
	"FEDEX_3_DAY_FREIGHT":                      "FedEx 3 Day Freight",
	"FEDEX_3_DAY_FREIGHT_SATURDAY_DELIVERY":    "FedEx 3 Day Freight Saturday Delivery",
	"INTERNATIONAL_PRIORITY":                   "FedEx International Priority",
	"INTERNATIONAL_PRIORITY_SATURDAY_DELIVERY": "FedEx International Priority Saturday Delivery",
	"INTERNATIONAL_ECONOMY":                    "FedEx International Economy",
	"INTERNATIONAL_FIRST":                      "FedEx International First",
	"INTERNATIONAL_PRIORITY_FREIGHT":           "FedEx International Priority Freight",
	"INTERNATIONAL_ECONOMY_FREIGHT":            "FedEx International Economy Freight",
	"GROUND_HOME_DELIVERY":                     "FedEx Ground Home Delivery",
	"FEDEX_GROUND":                             "FedEx Ground",
	"INTERNATIONAL_GROUND":                     "FedEx International Ground",
}

var PackageTypes = map[string]string{
	"fedex_envelope":  "FEDEX_ENVELOPE",
	"fedex_pak":       "FEDEX_PAK",
	"fedex_box":       "FEDEX_BOX",
	"fedex_tube":      "FEDEX_TUBE",
	"fedex_10_kg_box": "FEDEX_10KG_BOX",
	"fedex_25_kg_box": "FEDEX_25KG_BOX",
	"your_packaging":  "YOUR_PACKAGING",
}

var DropoffTypes = map[string]string{
	"regular_pickup":          "REGULAR_PICKUP",
	"request_courier":         "REQUEST_COURIER",
	"dropbox":                 "DROP_BOX",
	"business_service_center": "BUSINESS_SERVICE_CENTER",
	"station":                 "STATION",
}

// PaymentTypes is kept for shipment requests; rating always bills ACCOUNT.
var PaymentTypes = map[string]string{
	"sender":      "SENDER",
	"recipient":   "RECIPIENT",
	"third_party": "THIRDPARTY",
	"collect":     "COLLECT",
}

var PackageIdentifierTypes = map[string]string{
	"tracking_number":           "TRACKING_NUMBER_OR_DOORTAG",
	"door_tag":                  "TRACKING_NUMBER_OR_DOORTAG",
	"rma":                       "RMA",
	"ground_shipment_id":        "GROUND_SHIPMENT_ID",
	"ground_invoice_number":     "GROUND_INVOICE_NUMBER",
	"ground_customer_reference": "GROUND_CUSTOMER_REFERENCE",
	"ground_po":                 "GROUND_PO",
	"express_reference":         "EXPRESS_REFERENCE",
	"express_mps_master":        "EXPRESS_MPS_MASTER",
}

const (
	defaultDropoffType           = "regular_pickup"
	defaultPackagingType         = "your_packaging"
	defaultPackageIdentifierType = "tracking_number"
)

var titleCaser = cases.Title(language.English)

// ServiceNameForCode returns the display name of a service type code. Codes
// missing from ServiceTypes get a name derived from the code itself, so
// "FEDEX_FUTURE_SERVICE" becomes "FedEx Future Service".
func ServiceNameForCode(code string) string {
	if name, ok := ServiceTypes[code]; ok {
		return name
	}
	words := strings.ToLower(strings.ReplaceAll(code, "_", " "))
	name := strings.Replace(titleCaser.String(words), "Fedex ", "", 1)
	return "FedEx " + name
}

// resolveCode accepts either a friendly key ("fedex_box") or a carrier code
// ("FEDEX_BOX"). An empty value resolves to def.
func resolveCode(kind string, table map[string]string, value, def string) (string, error) {
	if value == "" {
		value = def
	}
	if code, ok := table[strings.ToLower(value)]; ok {
		return code, nil
	}
	for _, code := range table {
		if code == value {
			return code, nil
		}
	}
	return "", fmt.Errorf("%w: unknown %s %q", domain.ErrInvalidConfiguration, kind, value)
}
