// Package domain models Philippine seismic activity and its impact on a
// fixed registry of monitored population centers.
//
// # Data Sources
//
// Events come from one of two upstream providers per fetch cycle:
//
// PHIVOLCS (primary) publishes an HTML bulletin of recent earthquakes at
// https://earthquake.phivolcs.dost.gov.ph/. Each table row carries a local
// timestamp, signed decimal coordinates, depth in kilometers, a local
// Richter-type magnitude, and a free-text epicenter description.
//
// USGS (secondary) is the fdsnws event query API at
// https://earthquake.usgs.gov/fdsnws/event/1/query, queried by center
// coordinate, radius, and minimum magnitude over a trailing 7-day window.
// Responses are GeoJSON; depth is the third coordinate in kilometers.
//
// # Time Conventions
//
// PHIVOLCS timestamps look like "09 March 2025 - 11:42 PM" and are in
// Philippine Standard Time (UTC+8, no daylight saving). [ParseBulletinTime]
// converts them to UTC instants. Unparsable timestamps fall back to the
// current clock reading rather than dropping the event; the event is marked
// TimeEstimated so the degradation stays visible downstream.
//
// USGS event times are Unix epoch milliseconds and convert exactly.
//
// # Impact Classification
//
// [Classify] maps (magnitude, epicentral distance) to a severity tier using
// a fixed decision table: magnitude bands from strongest down, and within a
// band, distance rings from nearest out, first match wins. Anything below
// every threshold is MINIMAL and never surfaces in the aggregated output.
// Each tier carries a PHIVOLCS Earthquake Intensity Scale range (Roman
// numerals) as a qualitative descriptor.
//
// Priority ranks are dispatch ordering, 1 most urgent. A lower rank always
// means a more severe tier.
//
// # Aggregation
//
// [Aggregate] evaluates every event against every monitored location and
// keeps at most one record per location: the one with the lowest priority
// rank seen across all events. Ties keep the first record found, so callers
// control tie-breaking through event ordering (see [SortEventsByRecency]).
package domain
