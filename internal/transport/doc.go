// Package transport delivers router replies over HTTP and websocket.
//
// HTTP API
//
//	POST /command {"command": "add", "argument": "cat"}
//	    Run one command and return the Result as JSON.
//
//	POST /press/{action}
//	    Run a menu shortcut (add, remove, list, export).
//
//	GET /export
//	    Download the list as added_words.txt. The ETag is a fingerprint of
//	    the content; a matching If-None-Match answers 304.
//
//	GET /ws
//	    Websocket chat. Each inbound frame is {"text": "/add cat"} or
//	    {"press": "list"}; each gets one Result frame back.
//
// Every request is written to the access log. Storage failures still
// answer 200 with a Result marked failed, except for /export, which has no
// Result to carry them and answers 503.
package transport
