// Package invitesdk is a Go client for the app invitation service.
//
// The SDKClient exposes the unauthenticated invitee-side operations: fetching
// an invitation, accepting it, and rejecting it. Inviter-side operations
// (create, list, cancel) require a Session, created from a bearer token
// issued by the host authentication framework:
//
//	client := invitesdk.NewSDKClient("https://invite.example.com")
//
//	// Invitee side
//	inv, err := client.GetInvitation(ctx, inviteID)
//	res, err := client.AcceptInvitation(ctx, inviteID, invitesdk.AcceptInvitationRequest{
//		Email:    "newcomer@example.com",
//		Password: "correct horse battery staple",
//	})
//
//	// Inviter side
//	session := client.WithToken(token)
//	created, err := session.CreateInvitation(ctx, invitesdk.CreateInvitationRequest{
//		Email: "newcomer@example.com",
//	})
//
// Errors returned by the service are typed *APIError values; branch on their
// Code with IsCode:
//
//	if invitesdk.IsCode(err, invitesdk.ErrorCodeAlreadyInvited) {
//		// offer a resend instead
//	}
package invitesdk
