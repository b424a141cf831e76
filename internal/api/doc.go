// Package api handles incoming HTTP requests, request validation and response
// formatting. It adapts the assistant service to two routes: the single-page
// input surface served at GET / and the JSON analysis endpoint POST /api/analyze
// whose {"html": ...} response is the display surface.
package api
