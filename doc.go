// Package resumeforge is a Go client for the ResumeForge REST API.
//
// The client groups the API into per-resource services and layers three
// mechanisms underneath them: a token store with silent refresh-and-replay
// on expired sessions (core/apiclient), an authentication state machine
// (core/session), and a stale-while-revalidate data cache with request
// deduplication (core/cache).
//
// # Getting started
//
//	var cfg resumeforge.Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	client, err := resumeforge.New(cfg,
//		resumeforge.WithTokenStore(tokenstore.NewFileStore("")),
//		resumeforge.WithNotifier(notify.NewSlog(logger)),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if err := client.Auth.Restore(ctx); err != nil {
//		// No valid persisted session; prompt for credentials.
//		if err := client.Auth.Login(ctx, username, password); err != nil {
//			log.Fatal(err)
//		}
//	}
//
//	resumes, err := client.Resumes.List(ctx)
//
// Reads are cached per resource with staleness windows matching how often
// each resource changes; mutations invalidate the affected keys and emit a
// single success or error notification through the configured notifier.
package resumeforge
