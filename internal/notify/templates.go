package notify

import (
	"bytes"
	"html/template"

	"infracore/internal/model"
)

var contactEmailTmpl = template.Must(template.New("contact").Parse(`
<h2>New Contact Message</h2>
<p><strong>Name:</strong> {{.FirstName}} {{.LastName}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
<p><strong>Branch:</strong> {{.Branch}}</p>
<p><strong>Message:</strong><br>{{.Comments}}</p>
`))

var quoteEmailTmpl = template.Must(template.New("quote").Parse(`
<h2>New Quotation Request</h2>
<p><strong>Name:</strong> {{.ClientName}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
<p><strong>Company:</strong> {{.Company}}</p>
<p><strong>Address:</strong> {{.Street}}, {{.City}}, {{.State}}, {{.Zip}}, {{.Country}}</p>
<p><strong>Interest:</strong> {{.Interest}}</p>
<p><strong>Comments:</strong><br>{{.Comments}}</p>
<p><strong>Estimated Total:</strong> ₹{{.TotalAmount}}</p>
`))

// RenderContactEmail renders the HTML body for a contact submission.
func RenderContactEmail(msg *model.ContactMessage) (string, error) {
	var buf bytes.Buffer
	if err := contactEmailTmpl.Execute(&buf, msg); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderQuoteEmail renders the HTML body for a quote submission.
func RenderQuoteEmail(quotation *model.Quotation) (string, error) {
	var buf bytes.Buffer
	if err := quoteEmailTmpl.Execute(&buf, quotation); err != nil {
		return "", err
	}
	return buf.String(), nil
}
