// Package detect identifies the mail-exchange service behind a domain's MX
// record by suffix-matching the exchange hostname against known providers.
package detect

import "strings"

// pattern maps an MX exchange suffix to a provider name.
type pattern struct {
	suffix   string
	provider string
}

var emailPatterns = []pattern{
	{"aspmx.l.google.com", "Google_Workspace"},
	{"smtp.google.com", "Gmail"},
	{"gmail-smtp-in.l.google.com", "Gmail"},
	{"googlemail.com", "Google_Workspace"},
	{"mail.protection.outlook.com", "Office_365"},
	{"outlook.com", "Office_365"},
	{"hinet.net", "HiNet_Mail"},
	{"amazon.com", "Amazon_SES"},
	{"yahoodns.net", "Yahoo!_Mail"},
	{"mailcloud.com", "Mailcloud"},
	{"mimecast.com", "Mimecast"},
	{"messagelabs.com", "Broadcom_Email_Security"},
	{"pphosted.com", "Proofpoint"},
	{"barracudanetworks.com", "Barracuda"},
	{"sendgrid.net", "SendGrid"},
	{"mailgun.org", "Mailgun"},
	{"zoho.com", "ZOHO_Mail"},
	{"emailsrvr.com", "Rackspace_Email"},
	{"chinamobile.com", "China_Mobile"},
}

// EmailProvider returns the provider name for an MX exchange host, or ""
// when no pattern matches. The MX value may include the priority prefix and
// trailing dot as returned on the wire.
func EmailProvider(mxValue string) string {
	host := mxValue
	if fields := strings.Fields(mxValue); len(fields) > 1 {
		host = fields[len(fields)-1]
	}
	host = strings.ToLower(strings.TrimSuffix(host, "."))
	for _, p := range emailPatterns {
		if host == p.suffix || strings.HasSuffix(host, "."+p.suffix) {
			return p.provider
		}
	}
	return ""
}
