package sqlinline

const domainColumns = `
  d.id::text,
  d.name,
  d.tld,
  d.domain_full,
  d.vertical_id::text,
  v.name,
  d.country_id::text,
  c.code,
  d.entity_id::text,
  e.name,
  d.subtype,
  d.status,
  d.priority,
  d.registrar,
  d.registered_at,
  d.renewal_date,
  d.annual_cost_usd,
  d.cf_zone_id,
  d.cf_ssl_mode,
  d.cf_email_routing,
  d.hosting_provider,
  d.server_ip,
  d.has_landing,
  d.has_lead_capture,
  d.redirect_to,
  d.redirect_type,
  d.notes,
  d.created_at,
  d.updated_at
from domains d
left join verticals v on v.id = d.vertical_id
left join countries c on c.id = d.country_id
left join entities e on e.id = d.entity_id
`

const domainFilter = `
where ($1::text = '' or d.domain_full ilike '%' || $1::text || '%')
  and ($2::text = '' or d.vertical_id = nullif($2::text, '')::uuid)
  and ($3::text = '' or d.country_id = nullif($3::text, '')::uuid)
  and ($4::text = '' or d.status = $4::text)
`

const QListDomains = `--sql 4214013b-01fa-42e3-bfbe-ca18ece0cf7e
select` + domainColumns + domainFilter + `
order by d.domain_full asc
limit nullif($5::int, 0) offset $6::int;
`

const QCountDomains = `--sql 9767f25d-551c-4c9f-a514-5dcf0739f9ae
select count(*)
from domains d` + domainFilter + `;
`

const QListRenewingDomains = `--sql 5180dc26-5829-4cf0-9f06-94a88b62bd2f
select` + domainColumns + `
where d.renewal_date is not null
order by d.renewal_date asc, d.domain_full asc
limit nullif($1::int, 0);
`

const QSelectDomainByID = `--sql 18db3120-e02a-453b-a1e8-d579d59a5dac
select` + domainColumns + `
where d.id = $1::uuid
limit 1;
`

const QInsertDomain = `--sql 72602f92-ca75-43bc-a67d-7cac82484b94
insert into domains(
  name, tld, domain_full, vertical_id, country_id, entity_id, subtype, status, priority,
  registrar, registered_at, renewal_date, annual_cost_usd, cf_zone_id, cf_ssl_mode,
  cf_email_routing, hosting_provider, server_ip, has_landing, has_lead_capture,
  redirect_to, redirect_type, notes
) values (
  $1::text, $2::text, $3::text, $4::uuid, $5::uuid, $6::uuid, $7::text, $8::text, $9::text,
  $10::text, $11::date, $12::date, $13::numeric, $14::text, $15::text,
  $16::bool, $17::text, $18::text, $19::bool, $20::bool,
  $21::text, $22::text, $23::text
)
returning id::text, created_at, updated_at;
`

const QUpdateDomain = `--sql 756f2ec3-aa4d-4449-b1e4-412520aeabef
update domains set
  name = $2::text,
  tld = $3::text,
  domain_full = $4::text,
  vertical_id = $5::uuid,
  country_id = $6::uuid,
  entity_id = $7::uuid,
  subtype = $8::text,
  status = $9::text,
  priority = $10::text,
  registrar = $11::text,
  registered_at = $12::date,
  renewal_date = $13::date,
  annual_cost_usd = $14::numeric,
  cf_zone_id = $15::text,
  cf_ssl_mode = $16::text,
  cf_email_routing = $17::bool,
  hosting_provider = $18::text,
  server_ip = $19::text,
  has_landing = $20::bool,
  has_lead_capture = $21::bool,
  redirect_to = $22::text,
  redirect_type = $23::text,
  notes = $24::text,
  updated_at = now()
where id = $1::uuid
returning updated_at;
`

const QDeleteDomain = `--sql 83e6daac-0879-4f9c-9ab9-5aa497c58642
delete from domains where id = $1::uuid;
`
