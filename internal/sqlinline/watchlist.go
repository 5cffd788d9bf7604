package sqlinline

const watchlistColumns = `
  w.id::text,
  w.name,
  w.tld,
  w.domain_full,
  w.current_owner,
  w.registrar,
  w.expiry_date,
  w.estimated_price,
  w.status,
  w.priority,
  w.vertical,
  w.notes,
  w.created_at,
  w.updated_at
from domain_watchlist w
`

const QListWatchlist = `--sql e7e6f21b-e405-46eb-a3cf-77a1bac3d70c
select` + watchlistColumns + `
order by w.expiry_date asc nulls last, w.domain_full asc;
`

const QSelectWatchlistByID = `--sql 44c31280-df3a-49c0-9d9b-6f40d3460ed7
select` + watchlistColumns + `
where w.id = $1::uuid
limit 1;
`

const QInsertWatchlist = `--sql 507b1d71-5975-4170-8566-da8a1664e83c
insert into domain_watchlist(
  name, tld, domain_full, current_owner, registrar, expiry_date, estimated_price,
  status, priority, vertical, notes
) values (
  $1::text, $2::text, $3::text, $4::text, $5::text, $6::date, $7::numeric,
  $8::text, $9::text, $10::text, $11::text
)
returning id::text, created_at, updated_at;
`

const QUpdateWatchlist = `--sql 15e40504-0f16-4666-8627-dda05680cb51
update domain_watchlist set
  name = $2::text,
  tld = $3::text,
  domain_full = $4::text,
  current_owner = $5::text,
  registrar = $6::text,
  expiry_date = $7::date,
  estimated_price = $8::numeric,
  status = $9::text,
  priority = $10::text,
  vertical = $11::text,
  notes = $12::text,
  updated_at = now()
where id = $1::uuid
returning updated_at;
`

const QDeleteWatchlist = `--sql d813428d-dd86-463a-94ea-9f5ebb295b11
delete from domain_watchlist where id = $1::uuid;
`
