/*
Package jobsdk provides a client SDK for the JobTrackr job-application tracker.

# SDKClient vs Session

  - SDKClient: public operations (register, login, health) and session creation
  - Session: operations on the authenticated user's jobs

	client := jobsdk.NewSDKClient("http://localhost:5000")

	session, err := client.Login(ctx, "ada@example.com", "password")

	job, err := session.CreateJob(ctx, jobsdk.JobInput{
		Company: jobsdk.String("Acme"),
		Role:    jobsdk.String("Backend Engineer"),
	})

	page, err := session.ListJobs(ctx, jobsdk.ListJobsOptions{Sort: "latest", Limit: 20})

# Errors

Non-2xx responses are returned as *APIError carrying the HTTP status, the
machine code and the message from the body. Helpers such as IsNotFound and
IsUnauthorized inspect them. Jobs owned by another user are reported as not
found, exactly like jobs that do not exist.

# Exports

Session.Export returns the file bytes and its attachment filename. When the
filter matches no jobs the service sends a message instead of a file and
ExportResult.Empty reports true.

The request and response types in this package are also the wire types the
service encodes, so the two cannot drift apart.
*/
package jobsdk
