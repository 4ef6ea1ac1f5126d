package models

// QueryRequest is the body of POST /api/ai/query.
type QueryRequest struct {
	Query string `json:"query"`
}

// QueryResult is the success response for an AI query. Result carries the
// outcome of the last operation in the batch; TotalOperations echoes the
// count the model declared. Intermediate operation results are executed for
// their side effects but not surfaced.
type QueryResult struct {
	TotalOperations int         `json:"totalOperations"`
	Result          interface{} `json:"result"`
}
