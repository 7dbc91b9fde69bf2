// Package timezone provides timezone and calendar-day utilities for the application.
//
// Usage Examples:
//
//  1. Current time in the app timezone:
//     now := timezone.Now()
//
//  2. Calendar days, as used for check-in and check-out:
//     day, err := timezone.ParseDay("2024-03-01")  // midnight in app timezone
//     same := timezone.Day(someTime)               // truncate to that day's midnight
//     text := timezone.FormatDay(day)              // "2024-03-01"
//
// The timezone is configured via the APP_TIMEZONE environment variable and is
// initialized when the package is imported. Use IANA names such as "UTC" or
// "Asia/Jakarta"; an unknown name falls back to UTC.
package timezone
