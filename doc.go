// Package hookrelay is the Go receiver SDK for the Hook Relay webhook
// relay service.
//
// Hook Relay sits between webhook providers (Stripe, GitHub, Shopify, ...)
// and your application: it verifies the original provider signatures, queues
// deliveries, retries with backoff, and forwards each event to your endpoint
// re-signed with a shared secret. This SDK wraps a single HTTP route handler
// so that those forwarded deliveries are authenticated, parsed into a typed
// event, dispatched to your callback, and the outcome reported back to the
// relay.
//
// Key behavior:
//   - Time-boxed HMAC-SHA256 envelope verification with constant-time comparison
//   - Typed events built from the X-HookRelay-* delivery headers
//   - Replay policy, optional JSON Schema validation, optional local
//     duplicate suppression (memory or Redis)
//   - One outcome report per delivery; report failures are logged, never
//     surfaced to the caller
//
// Quick start:
//
//	sdk, err := hookrelay.New(
//	    hookrelay.WithSecret(os.Getenv("HOOKRELAY_SECRET")),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	h, err := sdk.Handler("stripe", func(ctx context.Context, evt *event.Event) error {
//	    return processInvoice(ctx, evt.Payload)
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	http.Handle("/webhooks/stripe", h)
package hookrelay
