package service

import "text/template"

const signature = `
Best regards,
VisionMatch Team
support@visionmatch.com
`

const rule = "──────────────────────────────"

var (
	signupTemplate = template.Must(template.New("signup").Parse(`
Hello,

Welcome to VisionMatch!

Your account has been successfully created, and you're all set to get started.
You can now log in and explore our platform.

If you did not create this account, please contact our support team immediately.

We're excited to have you with us and look forward to supporting your journey.
` + signature))

	bookingClientTemplate = template.Must(template.New("booking_client").Parse(`
Hello {{.ClientName}},

Your booking request has been sent successfully!

` + rule + `
BOOKING DETAILS
` + rule + `

Booking ID: {{.BookingID}}
Creator: {{.CreatorName}}
Service: {{or .ServiceType "Photography/Videography"}}
Package: {{or .PackageName "Custom Package"}}
Price: {{or .PackagePrice "To be discussed"}}
Event Date: {{or .EventDate "To be confirmed"}}
Location: {{or .Location "To be confirmed"}}

` + rule + `

What's Next?
1. Wait for {{.CreatorName}} to review your request
2. You'll be notified once they respond
3. Connect through chat to discuss details

You can track your booking status in your dashboard.
` + signature))

	bookingCreatorTemplate = template.Must(template.New("booking_creator").Parse(`
Hello {{.CreatorName}},

You have received a new booking request!

` + rule + `
BOOKING DETAILS
` + rule + `

Booking ID: {{.BookingID}}
Client: {{.ClientName}}
Service: {{or .ServiceType "Photography/Videography"}}
Package: {{or .PackageName "Custom Package"}}
Price: {{or .PackagePrice "To be discussed"}}
Event Date: {{or .EventDate "To be confirmed"}}
Location: {{or .Location "To be confirmed"}}

` + rule + `
{{if .ClientMessage}}
Client's Message:
"{{.ClientMessage}}"

{{end}}
Action Required:
Please log in to your dashboard to review and respond to this booking request.

You can accept, decline, or negotiate the terms with the client.
` + signature))

	bookingAcceptedTemplate = template.Must(template.New("booking_accepted").Parse(`
Hello {{.ClientName}},

Great news! {{.CreatorName}} has accepted your booking request.

` + rule + `
BOOKING CONFIRMED
` + rule + `

Booking ID: {{.BookingID}}
Creator: {{.CreatorName}}
Service: {{or .ServiceType "Photography/Videography"}}
Final Price: {{or .FinalPrice "As discussed"}}
Event Date: {{or .EventDate "To be confirmed"}}
Location: {{or .Location "To be confirmed"}}

` + rule + `

Next Steps:
1. Complete the payment to secure your booking
2. Connect with {{.CreatorName}} to finalize details
3. Prepare for your event!

Visit your dashboard to proceed with the payment.
` + signature))

	bookingDeclinedTemplate = template.Must(template.New("booking_declined").Parse(`
Hello {{.ClientName}},

Unfortunately, {{.CreatorName}} is unable to accept your booking request at this time.

Booking ID: {{.BookingID}}
{{if .DeclineMessage}}
Creator's Message:
"{{.DeclineMessage}}"

{{end}}
Don't worry! There are many talented creators on VisionMatch.
Browse our platform to find another creator who fits your needs.

If you need any assistance, our support team is here to help.
` + signature))

	paymentReceiptTemplate = template.Must(template.New("payment_receipt").Parse(`
Hello {{.ClientName}},

Your payment has been successfully processed and is now securely held in escrow!

` + rule + `
PAYMENT RECEIPT
` + rule + `

Booking ID: {{.BookingID}}
Transaction ID: {{or .TransactionID "N/A"}}
Creator: {{.CreatorName}}
Service: {{or .ServiceType "Photography/Videography"}}
Event Date: {{or .EventDate "To be confirmed"}}
Location: {{or .Location "To be confirmed"}}

` + rule + `
PAYMENT BREAKDOWN
` + rule + `

Base Amount: {{or .TotalAmount "N/A"}}
Platform Fee (10%): {{or .PlatformFee "N/A"}}
GST (18%): {{or .GST "N/A"}}
` + rule + `
Total Paid: {{or .FinalAmount "N/A"}}

` + rule + `

Your funds are safely held in escrow and will be released to the creator upon successful project completion.

What's Next?
1. Connect with {{.CreatorName}} to finalize event details
2. Review deliverables after the event
3. Confirm completion to release the payment

If you have any questions, contact our support team.
` + signature))
)
