// Package timezone pins application timestamps (metadata, last login) to APP_TIMEZONE.
// The location is resolved from config on first use and falls back to UTC when the
// name is empty or unknown. Booking dates do not go through here: they are calendar
// days and always live in UTC.
package timezone
