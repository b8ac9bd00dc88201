package main

import "fmt"

func main() {
	fmt.Println(`CREATE TABLE IF NOT EXISTS contact_submissions (
    id              UUID PRIMARY KEY,
    name            TEXT NOT NULL,
    phone           TEXT NOT NULL,
    area            TEXT NOT NULL,
    pest_type       TEXT NOT NULL,
    message         TEXT NOT NULL,
    attachment_name TEXT NOT NULL DEFAULT '',
    attachment_mime TEXT NOT NULL DEFAULT '',
    attachment_size BIGINT NOT NULL DEFAULT 0,
    created_at      TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_contact_submissions_created_at
    ON contact_submissions (created_at DESC);`)
}
