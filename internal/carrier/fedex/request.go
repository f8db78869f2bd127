package fedex

import "github.com/99minutos/carrier-gateway/internal/pkg/xmlnode"

// requestHeader is the authentication, client and transaction block shared by
// every FedEx request.
func requestHeader(creds Credentials) []*xmlnode.Node {
	auth := xmlnode.Build("WebAuthenticationDetail", func(wad *xmlnode.Node) {
		wad.Add(xmlnode.Build("UserCredential", func(uc *xmlnode.Node) {
			uc.Add(xmlnode.New("Key", creds.Key))
			uc.Add(xmlnode.New("Password", creds.Password))
		}))
	})

	client := xmlnode.Build("ClientDetail", func(cd *xmlnode.Node) {
		cd.Add(xmlnode.New("AccountNumber", creds.Account))
		cd.Add(xmlnode.New("MeterNumber", creds.Login))
	})

	transaction := xmlnode.Build("TransactionDetail", func(td *xmlnode.Node) {
		td.Add(xmlnode.New("CustomerTransactionId", CustomerTransactionID))
	})

	return []*xmlnode.Node{auth, client, transaction}
}

func versionNode(serviceID string, major int) *xmlnode.Node {
	return xmlnode.Build("Version", func(v *xmlnode.Node) {
		v.Add(xmlnode.New("ServiceId", serviceID))
		v.Add(xmlnode.New("Major", major))
		v.Add(xmlnode.New("Intermediate", 0))
		v.Add(xmlnode.New("Minor", 0))
	})
}
